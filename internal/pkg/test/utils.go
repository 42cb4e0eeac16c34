package test

import (
	"log"

	"github.com/uttambiswas679/GoogleChirpGeorgian/internal/pkg/messages"
)

type Msg struct {
	M *messages.TranscriptionMessage
	q string
}

func (m *Msg) equals(o *Msg) bool {
	return m.M.ID == o.M.ID && m.q == o.q
}

func NewMsg(id string, file string, profile string, q string) *Msg {
	return &Msg{M: messages.NewTranscriptionMessage(id, file, profile), q: q}
}

type Sender struct {
	Msgs []Msg
}

func (sender *Sender) Send(m *messages.TranscriptionMessage, q string) error {
	log.Printf("Sending msg %s\n", m.ID)
	sender.Msgs = append(sender.Msgs, Msg{m, q})
	return nil
}

func Contains(s []string, v string) bool {
	for _, a := range s {
		if a == v {
			return true
		}
	}
	return false
}

func ContainsMsg(s []Msg, v *Msg) bool {
	for _, a := range s {
		if a.equals(v) {
			return true
		}
	}
	return false
}
