package tableview

import (
	"strconv"
	"strings"
)

// Logical field names shared by the filter and sort stages. Sorting or
// filtering on a hidden column is still valid; visibility only affects what
// the renderer shows.
const (
	FieldDate            = "date"
	FieldHour            = "hour"
	FieldPatientName     = "patientName"
	FieldPatientAge      = "patientAge"
	FieldPatientDocument = "patientDocument"
)

// Columns lists every logical field in display order.
var Columns = []string{FieldDate, FieldHour, FieldPatientName, FieldPatientAge, FieldPatientDocument}

// Patient is the patient portion of a board row.
type Patient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Document string `json:"document"`
}

// Row is one appointment as held by the row store. Date is a calendar date
// in "2006-01-02" form, Hour a zero-padded "15:04" time-of-day string, so
// lexicographic comparison orders both correctly. Rows are immutable once
// loaded; identity is ID. Missing fields are not rejected: zero values sort
// lowest and never match a non-empty filter.
type Row struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Hour    string  `json:"hour"`
	Patient Patient `json:"patient"`
}

func fieldText(r Row, field string) string {
	switch field {
	case FieldDate:
		return r.Date
	case FieldHour:
		return r.Hour
	case FieldPatientName:
		return r.Patient.Name
	case FieldPatientDocument:
		return r.Patient.Document
	case FieldPatientAge:
		return strconv.Itoa(r.Patient.Age)
	}
	return ""
}

func compareField(a, b Row, field string) int {
	if field == FieldPatientAge {
		switch {
		case a.Patient.Age < b.Patient.Age:
			return -1
		case a.Patient.Age > b.Patient.Age:
			return 1
		}
		return 0
	}
	return strings.Compare(fieldText(a, field), fieldText(b, field))
}
