package shop

import "errors"

var ErrInvalidPurchase = errors.New("invalid product or insufficient stock")
