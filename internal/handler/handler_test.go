package handler

import (
	"context"

	"github.com/goevery/chat/internal/auth"
)

func userContext(userId string) context.Context {
	return auth.WithAuthentication(context.Background(), &auth.Authentication{Subject: userId})
}

func serviceContext() context.Context {
	return auth.WithAuthentication(context.Background(), &auth.Authentication{
		Subject:   auth.ServiceSubject,
		IsService: true,
	})
}
