package core

// Classification is the categorical outcome of scoring a message.
type Classification string

const (
	// ClassSpam marks a message whose score reached the spam threshold
	ClassSpam Classification = "SPAM"
	// ClassNotSpam marks a message whose score stayed below the threshold
	ClassNotSpam Classification = "NOT SPAM"
)

// String returns the persisted label for the classification
func (c Classification) String() string {
	return string(c)
}

// DetectionResult represents the outcome of classifying a single message
type DetectionResult struct {
	Classification Classification
	Score          int
}

// ResultRecord is the persisted form of one classification event
type ResultRecord struct {
	Timestamp      string `json:"timestamp"`
	Message        string `json:"message"`
	Classification string `json:"classification"`
	Score          int    `json:"score"`
}

// Detection bundles a processed message with its detection result and
// the path its result record was written to
type Detection struct {
	Message    string
	Result     DetectionResult
	ResultPath string
	FromCache  bool
}
