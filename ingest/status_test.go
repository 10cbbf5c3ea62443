package ingest

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Registered", "registered"},
		{"ACTIVE", "active"},
		{"approved", "approved"},
		{"Pending", "pending"},
		{"In Progress", "in-progress"},
		{"expired", "expired"},
		{"Not Registered", "not-registered"},
		{"rejected", "rejected"},
		{"None", "not-registered"},
		{"N/A", "not-applicable"},
		{"", "unknown"},
		{"   ", "unknown"},
		{"Under Review", "under review"}, // unrecognized passes through
	}
	for _, tc := range cases {
		if got := NormalizeStatus(tc.raw); got != tc.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDetectHeaderRowSkipsTitleRows(t *testing.T) {
	rows := [][]string{
		{"Registration Status Report", "", ""},
		{"", "", ""},
		{"Brand Name", "Status", "Reg No"},
		{"Cardiozen", "Registered", "KH-1001"},
	}

	idx, headers := detectHeaderRow(rows)
	if idx != 2 {
		t.Fatalf("header row = %d, want 2", idx)
	}
	if headers[0] != "Brand Name" || headers[1] != "Status" || headers[2] != "Reg No" {
		t.Fatalf("headers = %v", headers)
	}
}

func TestDetectHeaderRowFallsBackToFirstRow(t *testing.T) {
	rows := [][]string{
		{"Cardiozen", "", "KH-1001"},
		{"Gastrolex", "", "KH-1002"},
	}

	idx, headers := detectHeaderRow(rows)
	if idx != 0 {
		t.Fatalf("header row = %d, want 0", idx)
	}
	if headers[1] != "Column 2" {
		t.Fatalf("blank header = %q, want Column 2", headers[1])
	}
}

func TestParseRowMapsAliasesAndKeepsOriginals(t *testing.T) {
	headers := []string{"Brand Name", "Product Status", "Registration No.", "Market", "Notes"}
	row := []string{"Cardiozen", "In Progress", "KH-1001", "Cambodia", ""}

	record, ok := parseRow("Sheet1", 4, headers, row)
	if !ok {
		t.Fatal("row with content must produce a record")
	}
	if record.BrandName != "Cardiozen" {
		t.Fatalf("brandName = %q", record.BrandName)
	}
	if record.Status != "In Progress" || record.NormalizedStatus != "in-progress" {
		t.Fatalf("status = %q / %q", record.Status, record.NormalizedStatus)
	}
	if record.RegistrationNumber != "KH-1001" {
		t.Fatalf("registrationNumber = %q", record.RegistrationNumber)
	}
	if record.Country != "Cambodia" {
		t.Fatalf("country = %q", record.Country)
	}
	if record.SheetName != "Sheet1" || record.RowNumber != 4 {
		t.Fatalf("provenance = %s/%d", record.SheetName, record.RowNumber)
	}
	if record.Fields["Brand Name"] != "Cardiozen" || record.Fields["Market"] != "Cambodia" {
		t.Fatalf("originals lost: %v", record.Fields)
	}
	if _, present := record.Fields["Notes"]; present {
		t.Fatal("empty cells must not appear in Fields")
	}
}

func TestParseRowParsesNumericColumns(t *testing.T) {
	headers := []string{"Brand Name", "Strength", "Pack Size", "Manufacturer", "Unit Price", "Qty"}
	row := []string{"Cardiozen", "50mg", "10x10", "Bestlife", "1,250.50", "300"}

	record, ok := parseRow("Sheet1", 2, headers, row)
	if !ok {
		t.Fatal("row with content must produce a record")
	}
	if record.Strength != "50mg" || record.PackSize != "10x10" || record.Manufacturer != "Bestlife" {
		t.Fatalf("text columns: %+v", record)
	}
	if record.Price != 1250.50 {
		t.Fatalf("price = %v, want 1250.50", record.Price)
	}
	if record.Quantity != 300 {
		t.Fatalf("quantity = %d, want 300", record.Quantity)
	}
}

func TestParseRowNumericDefaultsToZero(t *testing.T) {
	headers := []string{"Brand Name", "Price", "Quantity"}
	record, ok := parseRow("Sheet1", 2, headers, []string{"Cardiozen", "TBD", "-"})
	if !ok {
		t.Fatal("row with content must produce a record")
	}
	if record.Price != 0 || record.Quantity != 0 {
		t.Fatalf("unparseable numerics must default to zero, got %v / %d", record.Price, record.Quantity)
	}
}

func TestCanonicalFieldRegistrationNeedsBothWords(t *testing.T) {
	if got := canonicalField("Registration No."); got != "registrationNumber" {
		t.Fatalf("Registration No. = %q", got)
	}
	if got := canonicalField("Registration Status"); got != "status" {
		t.Fatalf("Registration Status = %q", got)
	}
}

func TestParseRowSkipsEmptyRows(t *testing.T) {
	headers := []string{"Brand Name", "Status"}
	if _, ok := parseRow("Sheet1", 2, headers, []string{"", "  "}); ok {
		t.Fatal("blank row must be skipped")
	}
}
