package progress

import "github.com/vmunix/medley/internal/content"

// Status is the classification of an item's consumption state. The values
// are ordered: Unwatched < InProgress < Watched.
type Status int

const (
	Unwatched Status = iota
	InProgress
	Watched
)

func (s Status) String() string {
	switch s {
	case Watched:
		return "watched"
	case InProgress:
		return "in_progress"
	default:
		return "unwatched"
	}
}

// Config holds the classification thresholds. The zero value is not usable;
// start from DefaultConfig and adjust.
type Config struct {
	// WatchedPercent is the completion percentage at which a regular item
	// counts as watched.
	WatchedPercent float64

	// MinWatchTime guards against drive-by seeks: below this many seconds
	// of real playback an item is never watched, no matter the percent.
	MinWatchTime int64

	// ShortformDuration marks items shorter than this many seconds as
	// shortform, which use the stricter ShortformPercent threshold. A
	// skipped ending changes a short item's percent disproportionately.
	ShortformDuration int64
	ShortformPercent  float64

	// RemainingSeconds treats an item with less than this much runtime
	// left as watched regardless of percent (credits tolerance).
	RemainingSeconds int64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		WatchedPercent:    90,
		MinWatchTime:      60,
		ShortformDuration: 900,
		ShortformPercent:  95,
		RemainingSeconds:  120,
	}
}

// Classifier turns a raw progress record into a watch status. It is pure
// and deterministic given its configuration; applications needing a
// stricter policy inject their own implementation of the same contract.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify determines the watch status for a record. The item argument
// carries adapter-supplied metadata; the default policy does not consult
// it, but custom classifiers may.
func (c *Classifier) Classify(rec *Record, item *content.Item) Status {
	if rec == nil || rec.Playhead == 0 {
		return Unwatched
	}

	if rec.WatchTime < c.cfg.MinWatchTime {
		return InProgress
	}

	threshold := c.cfg.WatchedPercent
	if rec.Duration < c.cfg.ShortformDuration {
		threshold = c.cfg.ShortformPercent
	}

	if rec.Percent >= threshold || rec.Duration-rec.Playhead < c.cfg.RemainingSeconds {
		return Watched
	}

	return InProgress
}
