package delivery

import "errors"

var ErrStockDeliveryNotFound = errors.New("stock delivery not found")
