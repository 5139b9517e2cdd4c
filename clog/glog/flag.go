package glog

import (
	"errors"
	"flag"
)

func flagSet(name, value string) error {
	f := flag.Lookup(name)
	if f == nil {
		return errors.New("flag -" + name + " is not registered")
	}
	return f.Value.Set(value)
}
