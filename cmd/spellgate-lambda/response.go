// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// ProxyResponseWriter implements http.ResponseWriter and collects the
// response for conversion into an ALB target group response.
type ProxyResponseWriter struct {
	headers http.Header
	body    bytes.Buffer
	status  int
}

var _ http.ResponseWriter = &ProxyResponseWriter{}

func NewProxyResponseWriter() *ProxyResponseWriter {
	return &ProxyResponseWriter{
		headers: make(http.Header),
		status:  http.StatusOK,
	}
}

func (w *ProxyResponseWriter) Header() http.Header { return w.headers }

func (w *ProxyResponseWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *ProxyResponseWriter) WriteHeader(status int) { w.status = status }

func (w *ProxyResponseWriter) GetProxyResponse() (events.ALBTargetGroupResponse, error) {
	headers := map[string]string{}
	for h := range w.headers {
		headers[h] = w.headers.Get(h)
	}

	body := w.body.String()
	isBase64 := false

	if !utf8.ValidString(body) {
		body = base64.StdEncoding.EncodeToString(w.body.Bytes())
		isBase64 = true
	}

	return events.ALBTargetGroupResponse{
		StatusCode:        w.status,
		StatusDescription: http.StatusText(w.status),
		Headers:           headers,
		Body:              body,
		IsBase64Encoded:   isBase64,
	}, nil
}
