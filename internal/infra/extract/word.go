package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	wordNamespace   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	compatNamespace = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

var errNoDocumentPart = errors.New("word/document.xml not found")

// readWord returns the body paragraphs of an OOXML document. Paragraphs inside
// tables are not part of the body list and are skipped, as are blank ones.
func readWord(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening document part: %w", err)
		}
		defer rc.Close()

		paragraphs, err := bodyParagraphs(rc)
		if err != nil {
			return "", fmt.Errorf("parsing document part: %w", err)
		}
		return strings.Join(paragraphs, "\n"), nil
	}

	return "", errNoDocumentPart
}

func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		tableDepth int
		paraDepth  int
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			// text boxes hold their own paragraphs inside a run of the outer one
			if (t.Name.Space == wordNamespace && t.Name.Local == "txbxContent") ||
				(t.Name.Space == compatNamespace && t.Name.Local == "Fallback") {
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					paraDepth++
					if paraDepth == 1 {
						current.Reset()
					}
				}
			case "t":
				inText = paraDepth == 1
			case "tab":
				if paraDepth == 1 {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if paraDepth == 1 {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "t":
				inText = false
			case "p":
				if tableDepth == 0 && paraDepth > 0 {
					if paraDepth == 1 {
						if text := current.String(); strings.TrimSpace(text) != "" {
							paragraphs = append(paragraphs, text)
						}
					}
					paraDepth--
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
