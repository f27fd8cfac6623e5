package main

import "errors"

// onceString is a flag.Value that may be given at most once.
type onceString struct {
	value string
	set   bool
}

func (o *onceString) String() string {
	return o.value
}

func (o *onceString) Set(s string) error {
	if o.set {
		return errors.New("may only be given once")
	}
	o.value = s
	o.set = true
	return nil
}
