package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unknown is the display form of a metric that could not be resolved.
const Unknown = "unknown"

// NotApplicableText is the display form of views on a non-video post.
const NotApplicableText = "not applicable"

type countState int

const (
	countUnknown countState = iota
	countKnown
	countNotApplicable
)

// Count is an engagement counter (likes, comments, views). A Count is either
// a known non-negative integer, unknown, or not applicable (views on a
// non-video post). Unknown counts may carry a short reason describing the
// failure that produced them.
type Count struct {
	state  countState
	value  int64
	reason string
}

func CountOf(v int64) Count {
	return Count{state: countKnown, value: v}
}

func UnknownCount() Count {
	return Count{state: countUnknown}
}

// UnknownCountBecause records why the value could not be resolved. The reason
// shows up in the stored record next to the error trail.
func UnknownCountBecause(reason string) Count {
	return Count{state: countUnknown, reason: reason}
}

func NotApplicableCount() Count {
	return Count{state: countNotApplicable}
}

func (c Count) Known() bool         { return c.state == countKnown }
func (c Count) NotApplicable() bool { return c.state == countNotApplicable }

// Value returns the counter value; valid only when Known reports true.
func (c Count) Value() int64 { return c.value }

func (c Count) String() string {
	switch c.state {
	case countKnown:
		return strconv.FormatInt(c.value, 10)
	case countNotApplicable:
		return NotApplicableText
	default:
		if c.reason != "" {
			return Unknown + " (" + c.reason + ")"
		}
		return Unknown
	}
}

func (c Count) MarshalJSON() ([]byte, error) {
	if c.state == countKnown {
		return json.Marshal(c.value)
	}
	return json.Marshal(c.String())
}

func (c *Count) UnmarshalJSON(b []byte) error {
	var v int64
	if err := json.Unmarshal(b, &v); err == nil {
		*c = CountOf(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = CountFromString(s)
	return nil
}

// CountFromString is the inverse of String, used when loading stored records.
func CountFromString(s string) Count {
	s = strings.TrimSpace(s)
	if s == NotApplicableText {
		return NotApplicableCount()
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return CountOf(v)
	}
	if rest, found := strings.CutPrefix(s, Unknown+" ("); found && strings.HasSuffix(rest, ")") {
		return UnknownCountBecause(strings.TrimSuffix(rest, ")"))
	}
	return UnknownCount()
}

// Rate is an engagement-rate percentage, or unknown when it could not be
// computed.
type Rate struct {
	known bool
	value float64
}

func RateOf(v float64) Rate { return Rate{known: true, value: v} }
func UnknownRate() Rate     { return Rate{} }

func (r Rate) Known() bool    { return r.known }
func (r Rate) Value() float64 { return r.value }

func (r Rate) String() string {
	if !r.known {
		return Unknown
	}
	return strconv.FormatFloat(r.value, 'f', 2, 64)
}

func (r Rate) MarshalJSON() ([]byte, error) {
	if r.known {
		return json.Marshal(r.value)
	}
	return json.Marshal(Unknown)
}

func (r *Rate) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*r = RateOf(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = RateFromString(s)
	return nil
}

func RateFromString(s string) Rate {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return RateOf(v)
	}
	return UnknownRate()
}

// PostDate is the publish timestamp of a post; the zero value means unknown.
type PostDate struct {
	t time.Time
}

func PostDateOf(t time.Time) PostDate { return PostDate{t: t.UTC()} }

func (d PostDate) Known() bool     { return !d.t.IsZero() }
func (d PostDate) Time() time.Time { return d.t }

func (d PostDate) String() string {
	if d.t.IsZero() {
		return Unknown
	}
	return d.t.UTC().Format(time.RFC3339)
}

func (d PostDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *PostDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = PostDateFromString(s)
	return nil
}

func PostDateFromString(s string) PostDate {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
		return PostDateOf(t)
	}
	return PostDate{}
}

// PostResult is the unit of work and persistence: one scrape attempt against
// one post. It is created with every field unknown, filled in stage by stage,
// and upserted keyed by Shortcode.
type PostResult struct {
	URL            string    `json:"url"`
	Shortcode      string    `json:"shortcode"`
	Owner          string    `json:"owner"`
	Likes          Count     `json:"likes"`
	Comments       Count     `json:"comments"`
	Views          Count     `json:"views"`
	PostDate       PostDate  `json:"post_date"`
	LastRecord     time.Time `json:"last_record"`
	EngagementRate Rate      `json:"engagement_rate"`
	IsVideo        bool      `json:"is_video"`
	Error          string    `json:"error,omitempty"`
}

// NewPostResult returns a fresh record for one scrape attempt with every
// metric defaulted to unknown.
func NewPostResult(url string) *PostResult {
	return &PostResult{
		URL:            url,
		Owner:          Unknown,
		Likes:          UnknownCount(),
		Comments:       UnknownCount(),
		Views:          UnknownCount(),
		EngagementRate: UnknownRate(),
	}
}

// AppendError adds one sub-failure to the error trail. The trail is additive:
// earlier failures are never overwritten.
func (r *PostResult) AppendError(msg string) {
	if msg == "" {
		return
	}
	if r.Error == "" {
		r.Error = msg
		return
	}
	r.Error = r.Error + " | " + msg
}

// AppendErrorf is AppendError with formatting.
func (r *PostResult) AppendErrorf(format string, args ...any) {
	r.AppendError(fmt.Sprintf(format, args...))
}

// Failed reports whether the record carries any error.
func (r *PostResult) Failed() bool { return r.Error != "" }
