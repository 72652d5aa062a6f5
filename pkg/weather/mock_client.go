package weather

import "time"

type mockClient struct {
	now func() time.Time
}

func NewMock() Provider { return &mockClient{now: time.Now} }

func (m *mockClient) Current() (Current, error) {
	return Current{
		Location:      "Central Valley, CA",
		Temperature:   78,
		Condition:     "sunny",
		Humidity:      45,
		WindSpeed:     12,
		Precipitation: 0,
		LastUpdated:   m.now(),
	}, nil
}

func (m *mockClient) Forecast() ([]ForecastDay, error) {
	conditions := []string{"sunny", "partly-cloudy", "cloudy", "rainy"}
	today := m.now()
	out := make([]ForecastDay, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, ForecastDay{
			Date:          today.AddDate(0, 0, i),
			Condition:     conditions[i%len(conditions)],
			High:          75 + 2*i,
			Low:           52 + i,
			Precipitation: 10 * i,
			WindSpeed:     8 + 3*i,
		})
	}
	return out, nil
}
