package mongodb

import "errors"

var ErrRecordNotFound = errors.New("record not found in the database")
