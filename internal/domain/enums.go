package domain

// SafetyLevel classifies how concerning an ingredient is, from least to most.
type SafetyLevel string

const (
	SafetySafe     SafetyLevel = "safe"
	SafetyModerate SafetyLevel = "moderate"
	SafetyCaution  SafetyLevel = "caution"
	SafetyAvoid    SafetyLevel = "avoid"
)

// ValidSafetyLevels maps every recognized safety level to true.
var ValidSafetyLevels = map[SafetyLevel]bool{
	SafetySafe:     true,
	SafetyModerate: true,
	SafetyCaution:  true,
	SafetyAvoid:    true,
}

// ParseSafetyLevel normalizes a raw level string, falling back to moderate
// for anything unrecognized (the convention research providers follow).
func ParseSafetyLevel(s string) SafetyLevel {
	level := SafetyLevel(s)
	if ValidSafetyLevels[level] {
		return level
	}
	return SafetyModerate
}

// Provenance indicates where a resolved ingredient's data came from.
type Provenance string

const (
	ProvenanceDatabase   Provenance = "database"
	ProvenanceResearched Provenance = "researched"
	ProvenanceUnknown    Provenance = "unknown"
)

// FailureReason classifies why a research call failed.
type FailureReason string

const (
	FailureTimeout           FailureReason = "timeout"
	FailureProviderError     FailureReason = "provider_error"
	FailureMalformedResponse FailureReason = "malformed_response"
)

// WarningSeverity ranks emitted warnings.
type WarningSeverity string

const (
	// SeverityHigh is used for matches against the user's declared allergies.
	SeverityHigh WarningSeverity = "high"
	// SeverityMedium is used for avoid-level ingredients regardless of profile.
	SeverityMedium WarningSeverity = "medium"
)

// AnalysisSource records how the ingredient text entered the system.
type AnalysisSource string

const (
	SourceText  AnalysisSource = "text"
	SourceImage AnalysisSource = "image"
)

// ImageType represents the allowed label image types for upload.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
)

// AllowedImageContentTypes maps MIME content types back to ImageType.
var AllowedImageContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
}

// AllowedImageExtensions maps file extensions (without dot) to ImageType.
var AllowedImageExtensions = map[string]ImageType{
	"jpg":  ImageTypeJPG,
	"jpeg": ImageTypeJPG,
	"png":  ImageTypePNG,
}
