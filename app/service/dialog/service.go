package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"relaxan/app/client/bitrix"
	"relaxan/app/service/catalog"
	"relaxan/app/service/classify"
	"relaxan/app/service/session"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
)

const maxDisplayedProducts = 3

// Classifier turns a raw user message into a structured intent, or nil when
// the message could not be recognized.
type Classifier interface {
	Classify(ctx context.Context, text string) (*classify.Intent, error)
}

// LeadSender submits a collected lead to the CRM.
type LeadSender interface {
	SendLead(ctx context.Context, lead bitrix.Lead) error
}

// route pairs an intent predicate with its handler. Routes are evaluated in
// order; the first match wins and yields the whole reply for the turn.
type route struct {
	match  func(intent *classify.Intent, state session.State) bool
	handle func(ctx context.Context, userID int64, intent *classify.Intent, state session.State) (string, error)
}

type Service struct {
	classifier Classifier
	sessions   *session.Service
	catalogSvc *catalog.Service
	leads      LeadSender

	routes []route
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		classifier: do.MustInvoke[*classify.Service](di),
		sessions:   do.MustInvoke[*session.Service](di),
		catalogSvc: do.MustInvoke[*catalog.Service](di),
		leads:      do.MustInvoke[*bitrix.Client](di),
	}

	s.routes = s.buildRoutes()

	return s, nil
}

func (s *Service) buildRoutes() []route {
	return []route{
		{
			match: func(intent *classify.Intent, _ session.State) bool {
				return intent.Place != ""
			},
			handle: s.handlePlace,
		},
		{
			match: func(intent *classify.Intent, state session.State) bool {
				return state.Collecting && (intent.FSL != "" || intent.Phone != "" || intent.City != "")
			},
			handle: s.handleLeadDetails,
		},
		{
			match: func(intent *classify.Intent, _ session.State) bool {
				return intent.Interest != ""
			},
			handle: fixedReply(MsgInterest),
		},
		{
			match: func(intent *classify.Intent, state session.State) bool {
				return intent.Advice != "" && state.Attributes.Merge(intent).Name == ""
			},
			handle: fixedReply(MsgAdvice),
		},
		{
			match: func(intent *classify.Intent, _ session.State) bool {
				return intent.Thank != ""
			},
			handle: fixedReply(MsgThank),
		},
		{
			match: func(intent *classify.Intent, _ session.State) bool {
				return intent.Contacts != ""
			},
			handle: fixedReply(MsgContacts),
		},
		{
			match: func(intent *classify.Intent, _ session.State) bool {
				return intent.Greeting != ""
			},
			handle: fixedReply(MsgGreeting),
		},
		{
			match: func(intent *classify.Intent, _ session.State) bool {
				return intent.Cancel != ""
			},
			handle: s.handleCancel,
		},
	}
}

func fixedReply(message string) func(context.Context, int64, *classify.Intent, session.State) (string, error) {
	return func(_ context.Context, _ int64, _ *classify.Intent, _ session.State) (string, error) {
		return message, nil
	}
}

// Reply processes one user turn and yields exactly one response message.
func (s *Service) Reply(ctx context.Context, userID int64, text string) (string, error) {
	intent, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return "", fmt.Errorf("classifier.Classify: %w", err)
	}

	if intent == nil {
		return MsgNotRecognized, nil
	}

	state := s.sessions.Get(userID)

	for _, r := range s.routes {
		if r.match(intent, state) {
			return r.handle(ctx, userID, intent, state)
		}
	}

	return s.handleSearch(ctx, userID, intent, state)
}

func (s *Service) handlePlace(_ context.Context, userID int64, intent *classify.Intent, state session.State) (string, error) {
	state.Attributes = state.Attributes.Merge(intent)
	state.Collecting = true
	s.sessions.Save(userID, state)

	return MsgOrderPrompt, nil
}

// handleLeadDetails accumulates ФИО/phone/city across turns and submits the
// lead once all three are known. On a failed submission the draft is kept so
// the user can retry.
func (s *Service) handleLeadDetails(ctx context.Context, userID int64, intent *classify.Intent, state session.State) (string, error) {
	if intent.FSL != "" {
		state.Lead.FullName = intent.FSL
	}
	if intent.Phone != "" {
		state.Lead.Phone = intent.Phone
	}
	if intent.City != "" {
		state.Lead.City = intent.City
	}

	if !state.Lead.Complete() {
		s.sessions.Save(userID, state)
		return MsgLeadIncomplete, nil
	}

	lastName, firstName, middleName := splitFullName(state.Lead.FullName)

	lead := bitrix.Lead{
		LastName:     lastName,
		FirstName:    firstName,
		MiddleName:   middleName,
		Phone:        state.Lead.Phone,
		City:         state.Lead.City,
		ProductName:  state.Attributes.Name,
		ProductColor: state.Attributes.Color,
		ProductSize:  state.Attributes.Size,
	}

	if err := s.leads.SendLead(ctx, lead); err != nil {
		slog.Error("Failed to send lead",
			"user_id", userID,
			"error", err,
		)

		s.sessions.Save(userID, state)

		return MsgLeadFailed, nil
	}

	slog.Info("Lead sent",
		"user_id", userID,
		"city", lead.City,
		"telegram", true)

	state.Collecting = false
	state.Lead = session.LeadDraft{}
	s.sessions.Save(userID, state)

	return MsgLeadSent, nil
}

func (s *Service) handleCancel(_ context.Context, userID int64, _ *classify.Intent, state session.State) (string, error) {
	if state.Collecting || state.Lead != (session.LeadDraft{}) {
		state.Collecting = false
		state.Lead = session.LeadDraft{}
		s.sessions.Save(userID, state)
	}

	return MsgCancel, nil
}

func (s *Service) handleSearch(_ context.Context, userID int64, intent *classify.Intent, state session.State) (string, error) {
	state.Attributes = state.Attributes.Merge(intent)
	s.sessions.Save(userID, state)

	matches := s.catalogSvc.Find(catalog.Criteria{
		Name:             state.Attributes.Name,
		Color:            state.Attributes.Color,
		Size:             state.Attributes.Size,
		CompressionClass: state.Attributes.CompressionClass,
		Country:          state.Attributes.Country,
		Manufacturer:     state.Attributes.Manufacturer,
		Price:            state.Attributes.Price,
	})

	if len(matches) == 0 {
		return MsgNotFound, nil
	}

	displayed := matches
	if len(displayed) > maxDisplayedProducts {
		displayed = displayed[:maxDisplayedProducts]
	}

	response := MsgFoundHeader + strings.Join(pie.Map(displayed, catalog.FormatProduct), "\n\n")
	if len(matches) > maxDisplayedProducts {
		response += MsgMoreSuffix
	}

	return response, nil
}

// splitFullName splits "Фамилия Имя Отчество" on whitespace; missing parts
// stay empty.
func splitFullName(fullName string) (lastName, firstName, middleName string) {
	parts := strings.Fields(fullName)

	if len(parts) > 0 {
		lastName = parts[0]
	}
	if len(parts) > 1 {
		firstName = parts[1]
	}
	if len(parts) > 2 {
		middleName = strings.Join(parts[2:], " ")
	}

	return lastName, firstName, middleName
}
