package generator

import "errors"

var (
	ErrTableNotFound        = errors.New("table not found")
	ErrTemplateMissing      = errors.New("template missing")
	ErrPathUnwritable       = errors.New("path not writable")
	ErrUnmatchedPlaceholder = errors.New("unmatched template placeholder")
	ErrRouteFileMissing     = errors.New("route file not found")
)
