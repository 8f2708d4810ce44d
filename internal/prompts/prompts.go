package prompts

import (
	"fmt"
	"sort"
)

const (
	Humanize     = "humanize"
	ProductBrief = "product_brief"
)

// Template is a fixed system directive plus a wrapper for the caller's text.
type Template struct {
	Name        string
	System      string
	UserPrefix  string
	UserSuffix  string
	Temperature float64
}

// UserMessage wraps input with the template's fixed lead-in and trailer.
func (t Template) UserMessage(input string) string {
	return t.UserPrefix + input + t.UserSuffix
}

var registry = map[string]Template{
	Humanize: {
		Name:        Humanize,
		System:      humanizeSystemPrompt,
		UserPrefix:  "Rewrite this text to sound naturally human:\n\n",
		Temperature: 0.7,
	},
	ProductBrief: {
		Name:        ProductBrief,
		System:      productBriefSystemPrompt,
		UserPrefix:  "App idea:\n\n",
		UserSuffix:  "\n\nAssume the app supports multiple shops and recurring monthly or yearly subscriptions.",
		Temperature: 0.6,
	},
}

// Get returns the template registered under name.
func Get(name string) (Template, error) {
	tmpl, ok := registry[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown prompt template: %s", name)
	}
	return tmpl, nil
}

// Names returns a sorted list of registered template names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const humanizeSystemPrompt = "You rewrite AI-generated English text so it sounds like natural human writing. " +
	"Keep the original meaning, avoid obvious AI phrasing, vary sentence length, " +
	"and do not invent new facts."

const productBriefSystemPrompt = `You are a senior product strategist and UX writer.
Turn a short app idea into a concise, practical product brief.

Use exactly these sections, in this order, each as a heading:

Problem
Target users
Core features
Subscription tiers
MVP scope
Tech stack suggestion
Next steps

Keep every section short and concrete. Use bullet points where they help.
Do not add an introduction or a closing summary.`
