package support

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/omarselim0/shopmate/internal/catalog"
)

const (
	replyRefundTimeline = "Your refund will be processed within 5-7 business days."
	replyFallback       = "Sorry, I didn't understand that. You can ask about your orders, our products, or our store policies."
	replyNoCancelled    = "You have no recent cancelled orders."
)

// utterance is one turn's parsed input. Predicates cache their match
// results here so handlers do not repeat the work.
type utterance struct {
	text    string
	lower   string
	orderID string
	hasID   bool

	order      catalog.Order
	orderFound bool
	product    catalog.Product
	faq        catalog.FAQ
}

// route is one step of the intent cascade: a predicate that decides
// whether the step fires, and a handler that builds the reply.
type route struct {
	intent Intent
	when   func(s *Session, u *utterance) bool
	reply  func(s *Session, u *utterance) string
}

// Responder routes each utterance through an ordered intent cascade and
// produces exactly one reply per turn. It is stateless across turns; all
// per-conversation state lives in the Session.
type Responder struct {
	catalog  *catalog.Catalog
	products *ProductMatcher
	faqs     *FAQMatcher
	routes   []route
}

// NewResponder creates a responder over the given reference data.
func NewResponder(c *catalog.Catalog) *Responder {
	r := &Responder{
		catalog:  c,
		products: NewProductMatcher(c.Products()),
		faqs:     NewFAQMatcher(c.FAQs()),
	}

	// Evaluated top to bottom, first match wins.
	r.routes = []route{
		{IntentCancellationReason, r.whenAwaitingReason, r.replyCancellationComplete},
		{IntentCancel, r.whenCancel, r.replyCancel},
		{IntentRefund, r.whenRefund, r.replyRefund},
		{IntentTracking, r.whenTracking, r.replyTracking},
		{IntentOrderLookup, r.whenBareOrderID, r.replyOrderStatus},
		{IntentProduct, r.whenProduct, r.replyProduct},
		{IntentFAQ, r.whenFAQ, r.replyFAQ},
		{IntentFallback, func(*Session, *utterance) bool { return true }, r.replyFallback},
	}
	return r
}

// Respond processes one utterance to completion: intent routing, state
// mutation, reply construction, and appending the turn to history.
func (r *Responder) Respond(sess *Session, text string) Turn {
	u := r.parse(text)

	var turn Turn
	for _, rt := range r.routes {
		if rt.when(sess, u) {
			turn = Turn{
				User:      text,
				Bot:       rt.reply(sess, u),
				Intent:    rt.intent,
				CreatedAt: time.Now().UTC(),
			}
			break
		}
	}

	sess.History = append(sess.History, turn)
	return turn
}

func (r *Responder) parse(text string) *utterance {
	u := &utterance{
		text:  text,
		lower: strings.ToLower(text),
	}
	if id, ok := ExtractOrderID(text); ok {
		u.orderID = id
		u.hasID = true
		if n, err := strconv.Atoi(id); err == nil {
			u.order, u.orderFound = r.catalog.Order(n)
		}
	}
	return u
}

// Step 1: a pending cancellation completes on the very next utterance,
// whatever its content.
func (r *Responder) whenAwaitingReason(s *Session, _ *utterance) bool {
	return s.Pending != nil && s.Pending.AwaitingReason
}

func (r *Responder) replyCancellationComplete(s *Session, _ *utterance) string {
	id := s.Pending.OrderID
	s.Pending = nil
	s.Cancel(id)
	return fmt.Sprintf("Thanks for letting us know. Order #%s has been cancelled. %s", id, replyRefundTimeline)
}

// Step 2: explicit cancel intent with an extracted order id.
func (r *Responder) whenCancel(_ *Session, u *utterance) bool {
	return strings.Contains(u.lower, "cancel my order") && u.hasID
}

func (r *Responder) replyCancel(s *Session, u *utterance) string {
	if !u.orderFound {
		return fmt.Sprintf("Order #%s was not found. Please double-check your order id.", u.orderID)
	}
	if s.IsCancelled(u.orderID) {
		return fmt.Sprintf("Order #%s has already been cancelled.", u.orderID)
	}

	// A new cancel intent overwrites any pending slot.
	s.Pending = &PendingCancellation{OrderID: u.orderID, AwaitingReason: true}
	return fmt.Sprintf("Order #%s (%s) - this will be cancellation number %d for your account. Could you tell us the reason for the cancellation?",
		u.orderID, u.order.ProductName, s.CancelledCount()+1)
}

// Step 3: refund intent.
func (r *Responder) whenRefund(_ *Session, u *utterance) bool {
	return strings.Contains(u.lower, "refund")
}

func (r *Responder) replyRefund(s *Session, _ *utterance) string {
	id, ok := s.LastCancelled()
	if !ok {
		return replyNoCancelled
	}
	return fmt.Sprintf("Your refund for order #%s is on its way. %s", id, replyRefundTimeline)
}

// Step 4: tracking intent. An extracted id that is absent from the orders
// table gets an explicit not-found reply rather than falling through.
func (r *Responder) whenTracking(_ *Session, u *utterance) bool {
	return (strings.Contains(u.lower, "track") || strings.Contains(u.lower, "status")) && u.hasID
}

func (r *Responder) replyTracking(s *Session, u *utterance) string {
	if !u.orderFound {
		return fmt.Sprintf("Order #%s was not found. Please double-check your order id.", u.orderID)
	}
	return r.statusReply(s, u)
}

// Step 5: a bare order id with no keyword, only when the order exists.
// A missing order falls through to the later steps.
func (r *Responder) whenBareOrderID(_ *Session, u *utterance) bool {
	return u.hasID && u.orderFound
}

func (r *Responder) replyOrderStatus(s *Session, u *utterance) string {
	return r.statusReply(s, u)
}

func (r *Responder) statusReply(s *Session, u *utterance) string {
	if s.IsCancelled(u.orderID) {
		return fmt.Sprintf("Order #%s has already been cancelled.", u.orderID)
	}
	return fmt.Sprintf("Order #%s (%s) is currently %s. Expected delivery: %s.",
		u.orderID, u.order.ProductName, u.order.Status, u.order.DeliveryDate)
}

// Step 6: fuzzy product lookup over the whole utterance.
func (r *Responder) whenProduct(_ *Session, u *utterance) bool {
	p, _, ok := r.products.Match(u.text)
	if ok {
		u.product = p
	}
	return ok
}

func (r *Responder) replyProduct(_ *Session, u *utterance) string {
	return fmt.Sprintf("%s is available in sizes %s. Availability: %s.",
		u.product.Name, u.product.AvailableSizes, u.product.StockStatus)
}

// Step 7: FAQ lookup by TF-IDF cosine similarity.
func (r *Responder) whenFAQ(_ *Session, u *utterance) bool {
	f, _, ok := r.faqs.Match(u.text)
	if ok {
		u.faq = f
	}
	return ok
}

func (r *Responder) replyFAQ(_ *Session, u *utterance) string {
	return u.faq.Answer
}

// Step 8: fallback.
func (r *Responder) replyFallback(_ *Session, _ *utterance) string {
	return replyFallback
}
