package normalize

import (
	"reflect"
	"testing"
)

func TestNormalizeFiltersInvalidLines(t *testing.T) {
	raw := "A,Excellent\nBADCODE,too long\nB,Good,extra"
	res := Normalize(raw, Options{})

	want := []Record{
		{Code: "A", Description: "Excellent"},
		{Code: "B", Description: "Good,extra"},
	}
	if !reflect.DeepEqual(res.Records, want) {
		t.Fatalf("Records = %+v, want %+v", res.Records, want)
	}
	if res.Rejected != 1 {
		t.Fatalf("Rejected = %d, want 1", res.Rejected)
	}
}

func TestNormalizeRejections(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		accepted int
		rejected int
	}{
		{"no comma", "just prose with no separator", 0, 1},
		{"numeric code", "A1,has a digit", 0, 1},
		{"symbol code", "A+,plus sign", 0, 1},
		{"too long", "ABCDE,five letters", 0, 1},
		{"max length", "INCO,four letters", 1, 0},
		{"empty description", "A,   ", 0, 1},
		{"empty code", ",orphan description", 0, 1},
		{"blank lines ignored", "\n\nA,Excellent\n\n", 1, 0},
		{"whitespace padding", "  W  ,  Withdrawn  ", 1, 0},
		{"unicode letters ok", "Ä,umlaut grade", 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Normalize(c.raw, Options{})
			if len(res.Records) != c.accepted || res.Rejected != c.rejected {
				t.Fatalf("accepted=%d rejected=%d, want %d/%d (records: %+v)",
					len(res.Records), res.Rejected, c.accepted, c.rejected, res.Records)
			}
		})
	}
}

func TestNormalizeKeepsDuplicatesByDefault(t *testing.T) {
	raw := "A,Excellent\nA,Outstanding"
	res := Normalize(raw, Options{})
	if len(res.Records) != 2 {
		t.Fatalf("expected both duplicate codes kept, got %+v", res.Records)
	}
}

func TestNormalizeDedupKeepsFirst(t *testing.T) {
	raw := "A,Excellent\nA,Outstanding\nB,Good"
	res := Normalize(raw, Options{DedupCodes: true})

	want := []Record{
		{Code: "A", Description: "Excellent"},
		{Code: "B", Description: "Good"},
	}
	if !reflect.DeepEqual(res.Records, want) {
		t.Fatalf("Records = %+v, want %+v", res.Records, want)
	}
	if res.Rejected != 1 {
		t.Fatalf("Rejected = %d, want 1", res.Rejected)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	res := Normalize("", Options{})
	if len(res.Records) != 0 || res.Rejected != 0 {
		t.Fatalf("empty input produced %+v", res)
	}
}

func TestFormatCSVRoundTrip(t *testing.T) {
	records := []Record{
		{Code: "A", Description: "Excellent"},
		{Code: "WP", Description: "Withdrew, Passing"},
	}
	out := FormatCSV(records)
	want := "A,Excellent\nWP,Withdrew, Passing"
	if out != want {
		t.Fatalf("FormatCSV = %q, want %q", out, want)
	}

	back := Normalize(out, Options{})
	if !reflect.DeepEqual(back.Records, records) {
		t.Fatalf("round trip lost records: %+v", back.Records)
	}
}

func TestFormatCSVEmpty(t *testing.T) {
	if got := FormatCSV(nil); got != "" {
		t.Fatalf("FormatCSV(nil) = %q, want empty", got)
	}
}
