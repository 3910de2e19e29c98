package guard

import (
	"context"
	"net/http"
	"net/url"
	"reflect"
	"time"
)

// URL matches *url.URL values and absolute URL strings. Strings must
// carry a scheme and a host to qualify.
var URL = New("url", func(v any, _ Helpers) (*url.URL, bool) {
	switch u := v.(type) {
	case *url.URL:
		if u == nil {
			return nil, false
		}
		return u, true
	case string:
		parsed, err := url.ParseRequestURI(u)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, false
		}
		return parsed, true
	}
	return nil, false
})

// HTTPRequest matches non-nil *http.Request values.
var HTTPRequest = New("http request", func(v any, _ Helpers) (*http.Request, bool) {
	r, ok := v.(*http.Request)
	if !ok || r == nil {
		return nil, false
	}
	return r, true
})

// HTTPResponse matches non-nil *http.Response values.
var HTTPResponse = New("http response", func(v any, _ Helpers) (*http.Response, bool) {
	r, ok := v.(*http.Response)
	if !ok || r == nil {
		return nil, false
	}
	return r, true
})

// Context matches anything implementing context.Context. This is a
// deliberate duck-type check, broader than any concrete context
// implementation.
var Context = New("context", func(v any, _ Helpers) (context.Context, bool) {
	ctx, ok := v.(context.Context)
	if !ok || isNil(v) {
		return nil, false
	}
	return ctx, true
})

// Func matches any non-nil function value.
var Func = New("func", func(v any, _ Helpers) (any, bool) {
	if isNil(v) {
		return nil, false
	}
	if reflect.ValueOf(v).Kind() != reflect.Func {
		return nil, false
	}
	return v, true
})

// Chan matches any non-nil channel value.
var Chan = New("chan", func(v any, _ Helpers) (any, bool) {
	if isNil(v) {
		return nil, false
	}
	if reflect.ValueOf(v).Kind() != reflect.Chan {
		return nil, false
	}
	return v, true
})

// Time matches time.Time values.
var Time = New("time", func(v any, _ Helpers) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
})

// Duration matches time.Duration values.
var Duration = New("duration", func(v any, _ Helpers) (time.Duration, bool) {
	d, ok := v.(time.Duration)
	return d, ok
})

// ErrorValue matches non-nil error implementations.
var ErrorValue = New("error", func(v any, _ Helpers) (error, bool) {
	err, ok := v.(error)
	if !ok || isNil(v) {
		return nil, false
	}
	return err, true
})
