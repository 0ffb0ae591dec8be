package api

import "encoding/xml"

// Call-control markup (TwiML) rendering. Only the three verbs this
// service uses are modeled: Say, Record and Play.

type twimlResponse struct {
	XMLName xml.Name     `xml:"Response"`
	Say     string       `xml:"Say,omitempty"`
	Record  *twimlRecord `xml:"Record,omitempty"`
	Play    string       `xml:"Play,omitempty"`
}

type twimlRecord struct {
	Timeout   int    `xml:"timeout,attr"`
	MaxLength int    `xml:"maxLength,attr"`
	Action    string `xml:"action,attr"`
}

func renderTwiML(r twimlResponse) []byte {
	// Marshal on these fixed structs cannot fail.
	body, _ := xml.Marshal(r)
	return append([]byte(xml.Header), body...)
}

// greetingTwiML speaks the greeting and records the caller, posting
// the recording reference to the processing entry point.
func greetingTwiML(greeting string, timeout, maxLength int, action string) []byte {
	return renderTwiML(twimlResponse{
		Say: greeting,
		Record: &twimlRecord{
			Timeout:   timeout,
			MaxLength: maxLength,
			Action:    action,
		},
	})
}

// playTwiML instructs the provider to play the audio at url.
func playTwiML(url string) []byte {
	return renderTwiML(twimlResponse{Play: url})
}

// sayTwiML speaks a message and ends gracefully.
func sayTwiML(message string) []byte {
	return renderTwiML(twimlResponse{Say: message})
}
