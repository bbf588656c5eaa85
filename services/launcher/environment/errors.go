package environment

import "errors"

var errUnknownKind = errors.New("unknown environment kind")
var errMissingName = errors.New("missing environment name")
var errMissingPath = errors.New("missing environment path")
var errCondaRootNotFound = errors.New("conda root could not be determined")
var errPrefixNotFound = errors.New("environment prefix does not exist")
