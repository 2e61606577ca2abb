package uci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return errors.New("argument out of range")
	}
	*opt.Value = v
	return nil
}

// ComboOption accepts one of a fixed set of strings.
type ComboOption struct {
	Name   string
	Values []string
	Value  *string
}

func (opt *ComboOption) UciName() string {
	return opt.Name
}

func (opt *ComboOption) UciString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "option name %v type %v default %v", opt.Name, "combo", *opt.Value)
	for _, v := range opt.Values {
		fmt.Fprintf(&sb, " var %v", v)
	}
	return sb.String()
}

func (opt *ComboOption) Set(s string) error {
	for _, v := range opt.Values {
		if strings.EqualFold(v, s) {
			*opt.Value = v
			return nil
		}
	}
	return fmt.Errorf("unknown value %q for option %v", s, opt.Name)
}
