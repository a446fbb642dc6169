package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// Client wraps the PostgREST client. It is used for the health check only;
// CRUD goes through the direct Postgres connection.
type Client struct {
	Supabase *supabase.Client
}

func NewClient(supabaseURL, serviceKey string) (*Client, error) {
	client, err := supabase.NewClient(supabaseURL, serviceKey, nil)
	if err != nil {
		return nil, err
	}
	return &Client{Supabase: client}, nil
}

// TestConnection issues a head count against the categories table, the same
// cheap probe the admin panel uses to confirm the project is reachable.
func (c *Client) TestConnection() error {
	_, _, err := c.Supabase.From("categories").Select("*", "exact", true).Execute()
	if err != nil {
		return fmt.Errorf("supabase connection test failed: %w", err)
	}
	return nil
}

// Ping satisfies the health check probe.
func (c *Client) Ping() error {
	return c.TestConnection()
}
