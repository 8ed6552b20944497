package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	docx := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Ada Lovelace</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Engineer</w:t><w:tab/><w:t>Acme</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	tests := []struct {
		name     string
		filename string
		data     []byte
		want     string
		wantErr  error
	}{
		{
			name:     "docx paragraphs become lines",
			filename: "cv.DOCX",
			data:     docx,
			want:     "Ada Lovelace\nEngineer Acme",
		},
		{
			name:     "plain text is normalized",
			filename: "cv.txt",
			data:     []byte("  Ada  Lovelace \n\n\n Engineer  "),
			want:     "Ada Lovelace\nEngineer",
		},
		{
			name:     "unsupported extension",
			filename: "cv.odt",
			data:     []byte("x"),
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "blank text file",
			filename: "cv.md",
			data:     []byte(" \n\t "),
			wantErr:  ErrNoText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.filename, tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ExtractText() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractText() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractText_BrokenFiles(t *testing.T) {
	if _, err := ExtractText("cv.pdf", []byte("not a pdf")); err == nil {
		t.Error("ExtractText() accepted a broken pdf")
	}
	if _, err := ExtractText("cv.docx", []byte("not a zip")); err == nil {
		t.Error("ExtractText() accepted a broken docx")
	}
	if _, err := ExtractText("cv.docx", buildDocx(t, "")); err == nil {
		t.Error("ExtractText() accepted a docx with an empty body")
	}
}
