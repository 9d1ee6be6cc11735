package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/bubble/message"
)

// ScriptEntry is one message of a scripted conversation.
type ScriptEntry struct {
	Type    message.Type `yaml:"type"`
	Content string       `yaml:"content"`
	// Tail overrides the conversation's tail policy for this message.
	Tail message.TailPosition `yaml:"tail"`
}

// Script is a conversation to render, in order.
type Script []ScriptEntry

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return s, nil
}

// Messages turns the script into messages and their tails. Entries without
// an explicit tail follow [message.Tails].
func (s Script) Messages() ([]message.Message, []message.TailPosition) {
	msgs := make([]message.Message, len(s))
	for i, e := range s {
		msgs[i] = message.New(e.Content, e.Type)
	}
	tails := message.Tails(msgs)
	for i, e := range s {
		if e.Tail != message.TailUndefined {
			tails[i] = e.Tail
		}
	}
	return msgs, tails
}
