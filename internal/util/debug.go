package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type Context map[string]any

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

// DebugOut receives Debug lines. Tests swap it for a buffer.
var DebugOut io.Writer = os.Stdout

func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

func DebugWith(service string, message string, ctx Context) {
	context := make(Context, len(ctx)+1)
	for k, v := range ctx {
		context[k] = v
	}
	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	data, _ := json.Marshal(Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	})
	fmt.Fprintln(DebugOut, string(data))
}
