package models

// ErrorBody is the normalized error shape produced by the global error
// handler. Error carries internal detail only in development.
type ErrorBody struct {
	Message string      `json:"message"`
	Error   interface{} `json:"error"`
}

// MessageBody is used for confirmation responses such as deletes.
type MessageBody struct {
	Message string `json:"message"`
}

func Message(msg string) MessageBody {
	return MessageBody{Message: msg}
}
