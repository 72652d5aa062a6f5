package weather

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// scrapeClient pulls an NWS-style point forecast page and reads the panel
// data out of its markup. Used when WEATHER_URL is configured; the mock
// client covers everything else.
type scrapeClient struct {
	url      string
	location string
	httpc    *http.Client
}

func NewScrape(url, location string) Provider {
	return &scrapeClient{
		url:      url,
		location: location,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

var numRe = regexp.MustCompile(`-?\d+`)

func firstInt(s string) int {
	m := numRe.FindString(s)
	n, _ := strconv.Atoi(m)
	return n
}

func (c *scrapeClient) fetch() (*goquery.Document, error) {
	resp, err := c.httpc.Get(c.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather page: %s", resp.Status)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func (c *scrapeClient) Current() (Current, error) {
	doc, err := c.fetch()
	if err != nil {
		return Current{}, err
	}

	cur := Current{Location: c.location, LastUpdated: time.Now()}
	cur.Condition = strings.ToLower(strings.TrimSpace(doc.Find("#current_conditions-summary .myforecast-current").First().Text()))
	cur.Temperature = firstInt(doc.Find("#current_conditions-summary .myforecast-current-lrg").First().Text())

	doc.Find("#current_conditions_detail td").Each(func(i int, s *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(s.Text()))
		switch {
		case label == "humidity":
			cur.Humidity = firstInt(s.Next().Text())
		case strings.HasPrefix(label, "wind speed"):
			cur.WindSpeed = firstInt(s.Next().Text())
		}
	})
	return cur, nil
}

func (c *scrapeClient) Forecast() ([]ForecastDay, error) {
	doc, err := c.fetch()
	if err != nil {
		return nil, err
	}

	today := time.Now()
	out := make([]ForecastDay, 0, 5)
	doc.Find("#seven-day-forecast .forecast-tombstone").EachWithBreak(func(i int, s *goquery.Selection) bool {
		day := ForecastDay{
			Date:      today.AddDate(0, 0, len(out)+1),
			Condition: strings.ToLower(strings.TrimSpace(s.Find(".short-desc").Text())),
		}
		temp := s.Find(".temp").Text()
		n := firstInt(temp)
		if strings.Contains(strings.ToLower(temp), "low") {
			day.Low = n
		} else {
			day.High = n
		}
		out = append(out, day)
		return len(out) < 5
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("weather page: no forecast entries found")
	}
	return out, nil
}
