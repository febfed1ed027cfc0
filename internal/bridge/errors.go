package bridge

import "errors"

var errLearnedExecution = errors.New("learned capability execution failed")
