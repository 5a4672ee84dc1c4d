package leagueofgraphs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"matchjournal/internal/matchhistory"
	"matchjournal/lib/htmlutil"
	"matchjournal/lib/restyutil"
	"matchjournal/lib/telemetry"
	"net/http"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("matchjournal/internal/leagueofgraphs")

const DefaultBaseUrl = "https://www.leagueofgraphs.com"

var ErrSummonerNotFound = errors.New("summoner not found")

// sent with every request, the consent cookie skips the cookie wall
var browserHeaders = map[string]string{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Connection":      "keep-alive",
	"Cookie":          "lolg_euconsent=nitro",
	"DNT":             "1",
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0",
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// when set, every http exchange is written to this directory
	DumpDir string
	Timeout time.Duration
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(opts.Timeout)
	client.SetHeaders(browserHeaders)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "matchjournal/leagueofgraphs/http")

	var output restyutil.InstrumentOutput
	if opts.DumpDir != "" {
		fsOutput, err := restyutil.NewFilesystemOutput(opts.DumpDir)
		if err != nil {
			return nil, err
		}
		output = fsOutput
	}
	restyutil.InstrumentClient(client, output)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// SummonerPath is the path of a player's summoner page relative to the base url.
func SummonerPath(player matchhistory.Player) string {
	return fmt.Sprintf(
		"/summoner/%s/%s",
		url.PathEscape(player.Region),
		url.PathEscape(fmt.Sprintf("%s-%s", player.Username, player.Tag)),
	)
}

func (c *Client) SummonerUrl(player matchhistory.Player) string {
	return c.BaseUrl.JoinPath(SummonerPath(player)).String()
}

// FetchSummonerPage downloads and parses the summoner page of `player`.
func (c *Client) FetchSummonerPage(ctx context.Context, player matchhistory.Player) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "FetchSummonerPage")
	defer span.End()

	if err := ValidateRegion(player.Region); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	path := SummonerPath(player)
	span.SetAttributes(attribute.String("path", path))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch summoner page")
		return nil, fmt.Errorf("fetch summoner page: %w", err)
	}

	switch {
	case res.StatusCode() == http.StatusNotFound:
		span.SetStatus(codes.Error, ErrSummonerNotFound.Error())
		return nil, fmt.Errorf("%w: %s#%s (%s)", ErrSummonerNotFound, player.Username, player.Tag, player.Region)
	case res.IsError():
		span.SetStatus(codes.Error, res.Status())
		return nil, fmt.Errorf("fetch summoner page: unexpected status %d", res.StatusCode())
	}

	return htmlutil.Parse(ctx, bytes.NewReader(res.Body()))
}
