package activitylog

import "errors"

var ErrLogNotFound = errors.New("activity log not found")
