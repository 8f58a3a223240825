package importer

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Format
		wantErr bool
	}{
		{name: "xlsx", path: "contacts.xlsx", want: FormatXLSX},
		{name: "xls", path: "contacts.xls", want: FormatXLSX},
		{name: "csv", path: "contacts.csv", want: FormatCSV},
		{name: "uppercase extension", path: "CONTACTS.XLSX", want: FormatXLSX},
		{name: "nested path", path: "/tmp/uploads/contacts.csv", want: FormatCSV},
		{name: "unsupported", path: "contacts.json", wantErr: true},
		{name: "no extension", path: "contacts", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("FormatForPath(%q) expected error, got %q", tt.path, got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FormatForPath(%q) = (%q, %v), want (%q, nil)", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestReadContactsCSV(t *testing.T) {
	data := strings.Join([]string{
		"name,الجوال,email",
		"Ahmed Mohamed,0501234567,ahmed@acme.sa",
		"Khalid Otaibi,0559876543,khalid@acme.sa",
	}, "\n")

	rows, err := ReadContacts(strings.NewReader(data), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["name"] != "Ahmed Mohamed" {
		t.Errorf("rows[0][name] = %q", rows[0]["name"])
	}
	if rows[0]["الجوال"] != "0501234567" {
		t.Errorf("rows[0][الجوال] = %q, want raw header kept verbatim", rows[0]["الجوال"])
	}
	if rows[1]["email"] != "khalid@acme.sa" {
		t.Errorf("rows[1][email] = %q", rows[1]["email"])
	}
}

func TestReadContactsCSVWithBOM(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	buf.WriteString("name,phone\nAhmed Mohamed,0501234567\n")

	rows, err := ReadContacts(&buf, FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if _, ok := rows[0]["name"]; !ok {
		t.Errorf("BOM leaked into first header: keys = %v", rows[0])
	}
}

func TestReadContactsCSVRaggedRows(t *testing.T) {
	data := strings.Join([]string{
		"name,phone,email",
		"Ahmed Mohamed,0501234567",
		"Khalid Otaibi,0559876543,khalid@acme.sa,EXTRA",
	}, "\n")

	rows, err := ReadContacts(strings.NewReader(data), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["email"] != "" {
		t.Errorf("short row must be padded: email = %q", rows[0]["email"])
	}
	if len(rows[1]) != 3 {
		t.Errorf("cells beyond the header must be dropped: row = %v", rows[1])
	}
}

func TestReadContactsCSVSkipsEmptyRows(t *testing.T) {
	data := strings.Join([]string{
		"name,phone",
		"Ahmed Mohamed,0501234567",
		",",
		"   ,  ",
		"Khalid Otaibi,0559876543",
	}, "\n")

	rows, err := ReadContacts(strings.NewReader(data), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want 2 with empty rows skipped", len(rows))
	}
}

func TestReadContactsCSVHeaderOnly(t *testing.T) {
	rows, err := ReadContacts(strings.NewReader("name,phone\n"), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestReadContactsUnsupportedFormat(t *testing.T) {
	if _, err := ReadContacts(strings.NewReader("x"), Format("json")); err == nil {
		t.Error("expected error for unsupported format")
	}
}
