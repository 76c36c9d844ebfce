// Package slip renders the printable OPD token slip.
package slip

import (
	"fmt"
	"html/template"
	"io"
	"time"
)

// Data holds everything the slip template needs.
type Data struct {
	ClinicName  string
	PatientName string
	Age         int
	ITSNo       string
	DoctorName  string
	TokenNumber int
	IssuedAt    time.Time
}

// FormattedDate renders the issue date as e.g. "28 Aug 26".
func (d Data) FormattedDate() string {
	return d.IssuedAt.Format("02 Jan 06")
}

const slipTemplate = `<!DOCTYPE html>
<html>
<head>
<title>OPD Token</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Arial, sans-serif; padding: 20px; background: white; }
.prescription { width: 100%; max-width: 700px; margin: 0 auto; border: 2px solid #000; background: white; }
.header { text-align: center; border-bottom: 2px solid #000; padding: 10px; background: #f5f5f5; }
.header-title { font-size: 18px; font-weight: bold; margin-bottom: 3px; }
.patient-info { border-bottom: 2px solid #000; display: grid; grid-template-columns: auto 120px; }
.info-left { border-right: 2px solid #000; padding: 10px; }
.info-right { padding: 10px; display: flex; flex-direction: column; justify-content: center; align-items: center; }
.info-row { display: flex; padding: 5px 0; align-items: center; }
.info-label { font-weight: bold; min-width: 80px; font-size: 14px; }
.info-value { flex: 1; border-bottom: 1px solid #333; padding: 2px 5px; font-size: 14px; }
.info-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 10px; margin-top: 5px; }
.info-item { display: flex; align-items: center; gap: 5px; }
.info-item-label { font-weight: bold; font-size: 13px; }
.info-item-value { flex: 1; border-bottom: 1px solid #333; height: 20px; }
.token-label { font-size: 14px; margin-bottom: 5px; }
.token-number { font-size: 72px; font-weight: bold; line-height: 1; }
.doctor-row { display: flex; padding: 5px 0; }
.doctor-label { font-weight: bold; min-width: 80px; font-size: 14px; }
.doctor-value { flex: 1; border-bottom: 1px solid #333; padding: 2px 5px; font-size: 14px; }
.vitals-row { display: grid; grid-template-columns: repeat(4, 1fr); gap: 10px; padding: 5px 0; }
.vital-item { display: flex; align-items: center; gap: 5px; }
.vital-label { font-weight: bold; font-size: 12px; white-space: nowrap; }
.vital-value { flex: 1; border-bottom: 1px solid #333; height: 20px; }
.rx-section { padding: 15px; min-height: 400px; }
.rx-symbol { font-size: 36px; font-weight: bold; margin-bottom: 10px; }
.signature-section { border-top: 2px solid #000; padding: 15px; text-align: right; }
.signature-line { border-bottom: 1px solid #000; width: 200px; margin-left: auto; margin-bottom: 5px; height: 25px; }
.signature-label { font-weight: bold; font-size: 14px; }
@media print {
  body { padding: 0; }
  .no-print { display: none; }
  @page { margin: 0.5cm; }
}
</style>
</head>
<body>
<div class="prescription">
  <div class="header">
    <div class="header-title">{{.ClinicName}}</div>
  </div>
  <div class="patient-info">
    <div class="info-left">
      <div class="info-row">
        <span class="info-label">Name:</span>
        <span class="info-value">{{.PatientName}}</span>
      </div>
      <div class="info-grid">
        <div class="info-item">
          <span class="info-item-label">Date:</span>
          <span class="info-item-value">{{.FormattedDate}}</span>
        </div>
        <div class="info-item">
          <span class="info-item-label">Age</span>
          <span class="info-item-value">{{.Age}}</span>
        </div>
        <div class="info-item">
          <span class="info-item-label">ITS#</span>
          <span class="info-item-value">{{.ITSNo}}</span>
        </div>
      </div>
      <div class="doctor-row">
        <span class="doctor-label">Doctor:</span>
        <span class="doctor-value">{{.DoctorName}}</span>
      </div>
      <div class="vitals-row">
        <div class="vital-item">
          <span class="vital-label">BP/Pulse</span>
          <span class="vital-value"></span>
        </div>
        <div class="vital-item">
          <span class="vital-label">Weight</span>
          <span class="vital-value"></span>
        </div>
        <div class="vital-item">
          <span class="vital-label">Height</span>
          <span class="vital-value"></span>
        </div>
        <div class="vital-item">
          <span class="vital-label">Sugar:</span>
          <span class="vital-value"></span>
        </div>
      </div>
    </div>
    <div class="info-right">
      <div class="token-label">Token No</div>
      <div class="token-number">{{.TokenNumber}}</div>
    </div>
  </div>
  <div class="rx-section">
    <div class="rx-symbol">&#8478;</div>
  </div>
  <div class="signature-section">
    <div class="signature-line"></div>
    <div class="signature-label">Signature</div>
  </div>
</div>
<button class="no-print" onclick="window.print()" style="margin-top: 20px; padding: 12px 24px; cursor: pointer; background: #2d5f3f; color: white; border: none; border-radius: 5px; font-size: 16px; font-weight: bold; display: block; margin-left: auto; margin-right: auto;">Print Token</button>
</body>
</html>
`

// Renderer renders token slips as self-contained HTML documents.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("slip").Parse(slipTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing slip template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the slip HTML for the given data.
func (r *Renderer) Render(w io.Writer, data Data) error {
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering slip: %w", err)
	}
	return nil
}
