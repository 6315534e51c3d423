package models

// UploadedDocument is a résumé as received from the caller. It lives for a
// single request and is never stored.
type UploadedDocument struct {
	Data        []byte
	Filename    string
	ContentType string
}

func (d UploadedDocument) Size() int {
	return len(d.Data)
}
