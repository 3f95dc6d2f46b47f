package templates

import "errors"

// ErrTemplateNotFound indicates the requested template name is not registered.
var ErrTemplateNotFound = errors.New("templates: template not found")
