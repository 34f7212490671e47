package main

import (
	"fmt"
	"os"

	"github.com/hoplang/httok/tokenizer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("component", "httok")

var (
	noDecodeEntities bool
	jsonFormatter    bool
)

func init() {
	RootCmd.Flags().BoolVar(&noDecodeEntities, "no-decode-entities", false, "do not decode character references in text content")
	RootCmd.Flags().BoolVar(&jsonFormatter, "log-json", false, "emit logs as JSON instead of text")
}

// RootCmd is the main command for the 'httok' binary: it tokenizes an HTML
// file (or stdin) and prints one line per emitted token.
var RootCmd = &cobra.Command{
	Use:   "httok [file]",
	Short: "httok dumps the HTML tokenization stream for a file or stdin",
	Long:  "httok dumps the HTML tokenization stream for a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonFormatter {
			logrus.SetFormatter(&logrus.JSONFormatter{})
		}

		var f *os.File
		if len(args) == 1 {
			var err error
			f, err = os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
		} else {
			f = os.Stdin
		}

		cfg := tokenizer.DefaultConfig()
		cfg.DecodeCharacterReferences = !noDecodeEntities

		tok := tokenizer.New(tokenizer.NewSource(f), cfg)
		count := 0
		for {
			t, ok := tok.Next()
			if !ok {
				break
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(t))
			count++
		}
		log.WithField("tokens", count).Debug("finished tokenizing")
		return nil
	},
}

func describe(t tokenizer.Token) string {
	switch t.Type {
	case tokenizer.DataToken:
		return "Data " + quote(t.Text)
	case tokenizer.CDataToken:
		return "CData " + quote(t.Text)
	case tokenizer.ScriptDataToken:
		return "ScriptData " + quote(t.Text)
	case tokenizer.CommentToken:
		return "Comment " + quote(t.Text)
	case tokenizer.DocTypeToken:
		return describeDocType(t.DocType)
	case tokenizer.TagToken:
		return describeTag(t.Tag)
	default:
		return "Unknown"
	}
}

func describeDocType(d tokenizer.DocType) string {
	s := "DocType"
	if d.Name != nil {
		s += " name=" + quote(*d.Name)
	}
	if d.PublicIdentifier != nil {
		s += " public=" + quote(*d.PublicIdentifier)
	}
	if d.SystemIdentifier != nil {
		s += " system=" + quote(*d.SystemIdentifier)
	}
	if d.ForceQuirks {
		s += " force-quirks"
	}
	return s
}

func describeTag(tag tokenizer.Tag) string {
	s := "StartTag"
	if tag.IsEndTag {
		s = "EndTag"
	}
	s += " " + tag.Name
	if tag.IsEmptyElement {
		s += " /"
	}
	for _, a := range tag.Attributes {
		s += " " + a.Name + "=" + quote(a.Value)
	}
	return s
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Error("httok failed")
		os.Exit(1)
	}
}
