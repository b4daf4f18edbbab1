package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func (a *app) addAccount(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: agenda add (%s)", platformList())
	}
	platform := Platform(strings.ToLower(args[0]))
	if !platform.Valid() {
		return fmt.Errorf("unsupported provider type: %s (must be one of %s)", args[0], platformList())
	}
	if a.registry.Adapter(platform) == nil {
		return fmt.Errorf("%s is not configured: set client_id in %s", platform.DisplayName(), configFileName)
	}

	account := uuid.NewString()
	fmt.Fprintf(a.out, "🚀 Linking a %s account...\n", platform.DisplayName())
	cred, err := a.registry.Register(ctx, platform, account)
	if err != nil {
		return fmt.Errorf("linking %s account: %w", platform.DisplayName(), err)
	}
	if cred == nil {
		return fmt.Errorf("linking %s account returned no credential", platform.DisplayName())
	}

	fmt.Fprintf(a.out, "✅ %s account %s added successfully\n", platform.DisplayName(), account)
	fmt.Fprintf(a.out, "📅 Run `agenda calendars` to pick calendars to show.\n")
	return nil
}

func platformList() string {
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, string(p))
	}
	return strings.Join(names, "|")
}
