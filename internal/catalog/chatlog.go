package catalog

import "time"

// Chat conversation statuses.
const (
	ChatActive    = "Active"
	ChatCompleted = "Completed"
	ChatPending   = "Pending"
)

// Chat sentiments.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// ChatLog is one recorded bot conversation.
type ChatLog struct {
	ID               string    `json:"id" jsonschema:"description=Sequential chat id (CH-###)"`
	Customer         string    `json:"customer"`
	Product          string    `json:"product,omitempty"`
	Status           string    `json:"status"`
	Sentiment        string    `json:"sentiment,omitempty"`
	Messages         int       `json:"messages"`
	ResponseTimeSecs int       `json:"responseTimeSecs"`
	Created          time.Time `json:"created"`
}

func (c *ChatLog) Clone() *ChatLog {
	d := *c
	return &d
}

func (c *ChatLog) GetID() string { return c.ID }

func (c *ChatLog) Validate() error {
	fields := map[string]string{}
	if c.ID == "" {
		fields["id"] = "required"
	}
	if c.Customer == "" {
		fields["customer"] = "required"
	}
	if c.ResponseTimeSecs < 0 {
		fields["responseTimeSecs"] = "must not be negative"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (c *ChatLog) SearchFields() []string {
	return []string{c.ID, c.Customer, c.Product}
}
func (c *ChatLog) PhoneFields() []string  { return nil }
func (c *ChatLog) CreatedTime() time.Time { return c.Created }

// ChatFilters is the chat listing's filter predicate set.
type ChatFilters struct {
	Status    string
	Sentiment string
}

// MatchChatLog applies the chat filter predicates.
func MatchChatLog(c *ChatLog, f ChatFilters) bool {
	if f.Status != "" && f.Status != "All" && c.Status != f.Status {
		return false
	}
	if f.Sentiment != "" && f.Sentiment != "All" && c.Sentiment != f.Sentiment {
		return false
	}
	return true
}
