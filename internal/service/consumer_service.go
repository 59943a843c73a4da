// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"ara-be/internal/dto"
	"ara-be/internal/entity"
	"ara-be/internal/pkg/logger"
	"ara-be/internal/repository/specification"
	"ara-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	// Consume subscribes to the coverage topic and processes messages until ctx is done.
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber      message.Subscriber
	topicName       string
	uowFactory      unitofwork.RepositoryFactory
	coverageService ICoverageService
	logger          logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	coverageService ICoverageService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:      subscriber,
		topicName:       topicName,
		uowFactory:      uowFactory,
		coverageService: coverageService,
		logger:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishCoverageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // never retry a malformed message
		return
	}

	if err := cs.refreshCounters(ctx, payload.FunctionalityId); err != nil {
		cs.logger.Error("CONSUMER", "Failed to refresh coverage counters", map[string]interface{}{
			"functionality_id": payload.FunctionalityId,
			"error":            err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (cs *consumerService) refreshCounters(ctx context.Context, functionalityId int64) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	functionality, err := uow.FunctionalityRepository().FindOne(ctx,
		specification.ByID{ID: functionalityId},
		specification.WithScenarios{},
	)
	if err != nil {
		return err
	}
	if functionality == nil {
		cs.logger.Warn("CONSUMER", "Functionality deleted before its counters were refreshed", map[string]interface{}{"functionality_id": functionalityId})
		return nil
	}

	counters := CountCoverage(functionality.Scenarios())
	functionality.CoveredScenarios = counters.Covered
	functionality.CoveredCountryScenarios = counters.CoveredCountries
	functionality.IgnoredScenarios = counters.Ignored
	functionality.IgnoredCountryScenarios = counters.IgnoredCountries

	if err := uow.FunctionalityRepository().UpdateCounters(ctx, functionality); err != nil {
		return err
	}

	cs.coverageService.InvalidateSummary(ctx, functionality.ProjectId)
	cs.logger.Debug("CONSUMER", "Coverage counters refreshed", map[string]interface{}{
		"functionality_id": functionalityId,
		"covered":          counters.Covered,
		"ignored":          counters.Ignored,
	})
	return nil
}

type CoverageCounters struct {
	Covered          int
	CoveredCountries string
	Ignored          int
	IgnoredCountries string
}

// CountCoverage splits scenarios into active and ignored ones, with per-country
// counts formatted "cc:n|cc:n" in country code order.
func CountCoverage(scenarios []*entity.Scenario) CoverageCounters {
	covered := map[string]int{}
	ignored := map[string]int{}
	var counters CoverageCounters

	for _, s := range scenarios {
		target := covered
		if s.Ignored {
			counters.Ignored++
			target = ignored
		} else {
			counters.Covered++
		}
		for _, country := range s.Countries() {
			target[country]++
		}
	}

	counters.CoveredCountries = formatCountryCounts(covered)
	counters.IgnoredCountries = formatCountryCounts(ignored)
	return counters
}

func formatCountryCounts(counts map[string]int) string {
	countries := make([]string, 0, len(counts))
	for country := range counts {
		countries = append(countries, country)
	}
	slices.Sort(countries)

	parts := make([]string, 0, len(countries))
	for _, country := range countries {
		parts = append(parts, fmt.Sprintf("%s:%d", country, counts[country]))
	}
	return strings.Join(parts, "|")
}
