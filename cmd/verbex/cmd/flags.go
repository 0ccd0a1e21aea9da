package cmd

import "strings"

// arrayFlags collects every occurrence of a repeatable flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

func (a *arrayFlags) Type() string {
	return "stringArray"
}
