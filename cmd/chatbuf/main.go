// Command chatbuf drives one prompt/response cycle against a transcript file.
//
// The file is the conversation: write a prompt under the trailing user
// marker, run `chatbuf chat.md`, and the assistant's reply is streamed into
// the file (and echoed to the terminal) before the document is reopened for
// the next turn.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/chatbuf/chatbuf"
	"github.com/chatbuf/chatbuf/document"
	"github.com/chatbuf/chatbuf/pkg/slogx"
	"github.com/chatbuf/chatbuf/pkg/stdx"
	"github.com/chatbuf/chatbuf/transcript"
	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log = zerolog.New(output).With().Timestamp().Logger()
	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: slog.LevelInfo}),
	))
}

// echoDocument mirrors every append to the terminal while the real document
// receives it, so a streaming response is visible as it lands in the file.
type echoDocument struct {
	document.Document
}

func (d echoDocument) Append(text string) error {
	if err := d.Document.Append(text); err != nil {
		return err
	}
	switch text {
	case transcript.AssistantHeader:
		fmt.Printf("\n%s ", color.MagentaString("Assistant:"))
	case transcript.UserHeader:
		fmt.Println()
	default:
		fmt.Print(text)
	}
	return nil
}

func modelNames() string {
	names := make([]string, 0, len(chatbuf.Models()))
	for _, m := range chatbuf.Models() {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func main() {
	var (
		modelName = flag.String("model", chatbuf.ModelSmart.String(), "model tier: "+modelNames())
		newBuffer = flag.Bool("new", false, "seed the file as a fresh prompt buffer and exit")
		render    = flag.Bool("render", false, "pretty-print the reply as markdown after streaming")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		slog.SetDefault(slog.New(
			zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: slog.LevelDebug}),
		))
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <transcript-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Arg(0), *modelName, *newBuffer, *render); err != nil {
		slog.Error("prompt failed", slogx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, path, modelName string, newBuffer, render bool) error {
	doc := document.NewFile(path)

	if newBuffer {
		return chatbuf.CreatePromptBuffer(doc)
	}

	model, err := chatbuf.ParseModel(modelName)
	if err != nil {
		return err
	}

	app, err := chatbuf.Setup(ctx)
	if err != nil {
		return err
	}

	if err := app.PerformPrompt(ctx, echoDocument{doc}, model); err != nil {
		return err
	}

	if render {
		return renderReply(doc)
	}
	return nil
}

// renderReply pretty-prints the assistant turn that was just streamed.
func renderReply(doc document.Document) error {
	lines, err := doc.Lines()
	if err != nil {
		return err
	}

	_, history := transcript.Decode(lines)
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != transcript.Assistant {
			continue
		}

		glam := stdx.Must1(glamour.NewTermRenderer(glamour.WithAutoStyle()))
		out, err := glam.Render(history[i].Text)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	return nil
}
