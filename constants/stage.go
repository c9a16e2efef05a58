package constants

// Stage is the canonical name for one step of the harvest pipeline.
type Stage string

// Stable values (used in CLI flags and log lines).
const (
	StagePDFText Stage = "pdftext" // pdf -> raw text dump
	StageClean   Stage = "clean"   // raw text -> cleaned markdown
	StageLegends Stage = "legends" // cleaned text -> verbatim legend block
	StageCSV     Stage = "csv"     // legend block -> CODE,DESCRIPTION rows
)

// InputExt maps a stage to the extension it consumes (with dot).
func (s Stage) InputExt() string {
	switch s {
	case StagePDFText:
		return ".pdf"
	case StageClean, StageLegends:
		return ".md"
	case StageCSV:
		return ".txt"
	}
	return ""
}

// OutputExt maps a stage to the extension of the artifact it writes (with dot).
func (s Stage) OutputExt() string {
	switch s {
	case StagePDFText, StageClean:
		return ".md"
	case StageLegends:
		return ".txt"
	case StageCSV:
		return ".csv"
	}
	return ""
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	switch s {
	case StagePDFText, StageClean, StageLegends, StageCSV:
		return true
	}
	return false
}
