// Command viewer is a read-only operator console: it logs in against a
// running chat-api server, fetches every visible group, and renders the
// member lists as a table.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/RrD-111/chat-api/domain"
)

type Config struct {
	ServerAddr string `env:"SERVER_ADDR,default=http://localhost:8080"`
	Username   string `env:"VIEWER_USERNAME,required=true"`
	Password   string `env:"VIEWER_PASSWORD,required=true"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	token, err := login(client, config)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	groups, err := fetchGroups(client, config.ServerAddr, token)
	if err != nil {
		log.Fatalf("Failed to fetch groups: %v", err)
	}

	color.Green.Printf("%d group(s) visible on %s\n", len(groups), config.ServerAddr)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Members"})
	for _, g := range groups {
		names := lo.Map(g.Members, func(u domain.User, _ int) string {
			if u.IsAdmin {
				return u.Username + " (admin)"
			}
			return u.Username
		})
		table.Append([]string{
			fmt.Sprintf("%d", g.ID),
			g.Name,
			strings.Join(names, ", "),
		})
	}
	table.Render()
}

func login(client *http.Client, config Config) (string, error) {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, config.Username, config.Password)
	resp, err := client.Post(config.ServerAddr+"/login", "application/json", strings.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func fetchGroups(client *http.Client, addr, token string) ([]domain.Group, error) {
	req, err := http.NewRequest(http.MethodGet, addr+"/groups", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var groups []domain.Group
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		return nil, err
	}
	return groups, nil
}
