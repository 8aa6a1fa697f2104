package repository

import "errors"

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("repository: record not found")
