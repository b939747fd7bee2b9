// Package reply holds the display payloads handed to the chat front end: plain text
// plus optional quick-reply buttons whose payloads the dialogue manager can trigger.
package reply

import "fmt"

const (
	AgreePayload    = "/agree"
	DisagreePayload = "/disagree"
)

// Button is a quick-reply option
type Button struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Display is one message shown to the user
type Display struct {
	Text    string   `json:"text"`
	Buttons []Button `json:"buttons,omitempty"`
}

// InformPayload re-enters the bid workflow with the artwork id pre-filled
func InformPayload(artworkID string) string {
	return fmt.Sprintf(`/inform{"artwork_id": "%s"}`, artworkID)
}

// InfoCardPayload asks for the full info card of an artwork
func InfoCardPayload(artworkID string) string {
	return fmt.Sprintf(`/ask_artwork_info_card{"artwork_id": "%s"}`, artworkID)
}

// Collector accumulates the messages produced while handling one turn
type Collector struct {
	messages []Display
}

// Utter appends a message
func (c *Collector) Utter(text string, buttons ...Button) {
	c.messages = append(c.messages, Display{Text: text, Buttons: buttons})
}

// Messages returns the collected messages, never nil
func (c *Collector) Messages() []Display {
	if c.messages == nil {
		return []Display{}
	}
	return append([]Display(nil), c.messages...)
}
