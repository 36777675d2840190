package email

import (
	"html/template"
	"strings"

	"medicine_expiry_notifier/internal/domain/medicine"
)

const expiryDateLayout = "02 Jan 2006"

// consolidatedTmpl carries an already-composed plain-text summary, shown
// pre-formatted so its line ordering survives intact.
var consolidatedTmpl = template.Must(template.New("consolidated").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #c0392b;">{{.Title}}</h2>
  <pre style="font-family: inherit; font-size: 14px; white-space: pre-wrap;">{{.Body}}</pre>
  <p style="font-size: 12px; color: #888;">You are receiving this because expiry reminders are enabled for your medicine inventory.</p>
</body>
</html>
`))

// singleTmpl is the tabular layout for a notification about one medicine.
var singleTmpl = template.Must(template.New("single").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #c0392b;">Medicine Expiry Reminder</h2>
  <table border="1" cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
    <tr><th align="left">Name</th><td>{{.Name}}</td></tr>
    <tr><th align="left">Expiry date</th><td>{{.ExpiryDate}}</td></tr>
    <tr><th align="left">Quantity</th><td>{{.Quantity}}</td></tr>{{if .BatchNumber}}
    <tr><th align="left">Batch</th><td>{{.BatchNumber}}</td></tr>{{end}}
  </table>
  <p style="font-size: 12px; color: #888;">You are receiving this because expiry reminders are enabled for your medicine inventory.</p>
</body>
</html>
`))

func renderConsolidated(title, body string) (string, error) {
	var b strings.Builder
	err := consolidatedTmpl.Execute(&b, struct {
		Title string
		Body  string
	}{Title: title, Body: body})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderSingle(med *medicine.Medicine) (string, error) {
	data := struct {
		Name        string
		ExpiryDate  string
		Quantity    int
		BatchNumber string
	}{
		Name:       med.Name,
		ExpiryDate: med.ExpiryDate.Format(expiryDateLayout),
		Quantity:   med.Quantity,
	}
	if med.BatchNumber.Valid {
		data.BatchNumber = med.BatchNumber.String
	}

	var b strings.Builder
	if err := singleTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
