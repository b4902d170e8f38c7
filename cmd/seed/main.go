package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ferroviario/socio-api/config"
	"github.com/ferroviario/socio-api/internal/models"
)

// Offline helper that pulls league/team metadata from TheSportsDB and seeds
// the competitions table. Invoked ad hoc, never as part of request serving.

const defaultBaseURL = "https://www.thesportsdb.com/api/v1/json"

type leagueLookup struct {
	Leagues []struct {
		Name        string `json:"strLeague"`
		Country     string `json:"strCountry"`
		Description string `json:"strDescriptionEN"`
	} `json:"leagues"`
}

type teamSearch struct {
	Teams []struct {
		Name    string `json:"strTeam"`
		Stadium string `json:"strStadium"`
		Country string `json:"strCountry"`
	} `json:"teams"`
}

func main() {
	leagueID := flag.String("league", "", "TheSportsDB league id to import as a competition")
	teamName := flag.String("team", "", "team name to look up")
	apiKey := flag.String("key", "123", "TheSportsDB API key")
	baseURL := flag.String("base-url", defaultBaseURL, "TheSportsDB base URL")
	flag.Parse()

	if *leagueID == "" && *teamName == "" {
		log.Fatal("nothing to do: pass -league and/or -team")
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := config.InitDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	client := &http.Client{Timeout: 15 * time.Second}

	if *leagueID != "" {
		var lookup leagueLookup
		params := url.Values{"id": {*leagueID}}
		if err := fetch(client, *baseURL, *apiKey, "lookupleague.php", params, &lookup); err != nil {
			logger.Fatal("league lookup failed", zap.Error(err))
		}
		if len(lookup.Leagues) == 0 {
			logger.Fatal("league not found", zap.String("league_id", *leagueID))
		}

		league := lookup.Leagues[0]
		competition := models.Competition{
			Name:    league.Name,
			Country: league.Country,
		}
		if league.Description != "" {
			competition.Description = &league.Description
		}

		var existing models.Competition
		if result := db.Where("name = ?", competition.Name).First(&existing); result.Error == nil {
			logger.Info("competition already seeded",
				zap.String("name", competition.Name),
				zap.Uint("id", existing.ID),
			)
		} else if err := db.Create(&competition).Error; err != nil {
			logger.Fatal("failed to seed competition", zap.Error(err))
		} else {
			logger.Info("competition seeded",
				zap.String("name", competition.Name),
				zap.Uint("id", competition.ID),
			)
		}
	}

	if *teamName != "" {
		var search teamSearch
		params := url.Values{"t": {*teamName}}
		if err := fetch(client, *baseURL, *apiKey, "searchteams.php", params, &search); err != nil {
			logger.Fatal("team search failed", zap.Error(err))
		}
		if len(search.Teams) == 0 {
			logger.Fatal("team not found", zap.String("team", *teamName))
		}

		team := search.Teams[0]
		logger.Info("team metadata",
			zap.String("name", team.Name),
			zap.String("stadium", team.Stadium),
			zap.String("country", team.Country),
		)
	}
}

func fetch(client *http.Client, baseURL, apiKey, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s/%s/%s?%s", baseURL, apiKey, endpoint, params.Encode())

	resp, err := client.Get(reqURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
