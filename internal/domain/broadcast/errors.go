package broadcast

import "errors"

var ErrMessageNotFound = errors.New("broadcast message not found")
