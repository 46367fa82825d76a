package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateUploadBody builds a multipart body holding a single file under fieldName.
// It returns the body and the matching Content-Type header value.
func CreateUploadBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// CreateEmptyUploadBody builds a multipart body without any file part.
func CreateEmptyUploadBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file attached"))
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}
