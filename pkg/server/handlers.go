package server

import (
	"Globetrek/handler"
)

type Handlers struct {
	User    *handler.User
	Country *handler.Country
	Review  *handler.Review
	Comment *handler.Comment
}
