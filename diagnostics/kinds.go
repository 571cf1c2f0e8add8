package diagnostics

// Kind identifies the class of a recoverable parse problem. The set is
// closed and stable: adding a variant is a minor-version change, removing
// or renaming one is not allowed once released.
type Kind uint8

// The fixed diagnostic taxonomy. Order matches the grammar's own
// top-to-bottom structure (document shape, then color, then clues, then
// solution/image) rather than alphabetical order, so a reader scanning the
// loader source and this list side by side can follow along.
const (
	XMLMalformed Kind = iota
	IllegalContent
	UnrecognizedElement
	UnrecognizedAttribute
	PuzzleTypeUnsupported
	PuzzleTooManyColors
	PuzzleColorUndefined
	PuzzleMissingClues
	PuzzleMissingGoal
	ColorMissingName
	ColorInvalidChar
	ColorInvalidRGB
	ColorDuplicateName
	ColorDuplicateChar
	CluesInvalidType
	CluesMissingType
	CluesDuplicate
	ClueInvalidCount
	SolutionInvalidType
	SolutionMissingImage
	SolutionDuplicateImage
	SolutionIndeterminateImage
	ImageInvalid
	ImageMismatchedDimensions

	kindCount
)

var kindNames = [kindCount]string{
	XMLMalformed:               "xml_malformed",
	IllegalContent:             "illegal_content",
	UnrecognizedElement:        "unrecognized_element",
	UnrecognizedAttribute:      "unrecognized_attribute",
	PuzzleTypeUnsupported:      "puzzle_type_unsupported",
	PuzzleTooManyColors:        "puzzle_too_many_colors",
	PuzzleColorUndefined:       "puzzle_color_undefined",
	PuzzleMissingClues:         "puzzle_missing_clues",
	PuzzleMissingGoal:          "puzzle_missing_goal",
	ColorMissingName:           "color_missing_name",
	ColorInvalidChar:           "color_invalid_char",
	ColorInvalidRGB:            "color_invalid_rgb",
	ColorDuplicateName:         "color_duplicate_name",
	ColorDuplicateChar:         "color_duplicate_char",
	CluesInvalidType:           "clues_invalid_type",
	CluesMissingType:           "clues_missing_type",
	CluesDuplicate:             "clues_duplicate",
	ClueInvalidCount:           "clue_invalid_count",
	SolutionInvalidType:        "solution_invalid_type",
	SolutionMissingImage:       "solution_missing_image",
	SolutionDuplicateImage:     "solution_duplicate_image",
	SolutionIndeterminateImage: "solution_indeterminate_image",
	ImageInvalid:               "image_invalid",
	ImageMismatchedDimensions:  "image_mismatched_dimensions",
}

// String returns the diagnostic kind's wire name, e.g. "color_invalid_rgb".
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown_diagnostic"
	}
	return kindNames[k]
}
