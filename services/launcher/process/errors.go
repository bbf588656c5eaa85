package process

import "errors"

var errEmptyCommand = errors.New("empty command")
