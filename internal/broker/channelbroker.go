package broker

import "context"

type publishChannelContent[TID comparable, TPayload any] struct {
	ID      TID
	Channel chan TPayload
}

type subscribeChannelContent[TID comparable, TPayload any] struct {
	ID      TID
	Channel chan chan TPayload
}

// ChannelBroker passes a channel with ID from producer to the first consumer.
// The subsequent consumers will block until producer is finished so that they
// can resolve the situation e.g. by reading the finished data from the state store.
//
// This kind of broker is useful for delivering delayed chat replies through long polling. The
// producer in this case is a goroutine spawned by HTTP POST that waits for the typing delay.
// The first consumer is the HTTP handler that waits for the reply. The subsequent
// consumers are likely caused by connectivity issues. In their case, it's better to
// wait for the producer to finish and return the complete data at the end.
type ChannelBroker[TID comparable, TPayload any] struct {
	stopChannel      chan struct{}
	publishChannel   chan publishChannelContent[TID, TPayload]
	unpublishChannel chan TID
	subscribeChannel chan subscribeChannelContent[TID, TPayload]
}

// NewChannelBroker creates a new ChannelBroker. Use Start to run the goroutine that handles it
// and Stop to stop it.
func NewChannelBroker[TID comparable, TPayload any]() *ChannelBroker[TID, TPayload] {
	broker := ChannelBroker[TID, TPayload]{
		stopChannel:      make(chan struct{}),
		publishChannel:   make(chan publishChannelContent[TID, TPayload]),
		unpublishChannel: make(chan TID),
		subscribeChannel: make(chan subscribeChannelContent[TID, TPayload]),
	}
	return &broker
}

// Start listening for publish, unpublish, and subscribe events. This function blocks until Stop() is called
// or ctx is done, so it should be called in a goroutine.
func (b *ChannelBroker[TID, TPayload]) Start(ctx context.Context) {
	publishedChannels := map[TID]chan TPayload{}
	waitingSubscribers := map[TID][]chan chan TPayload{}
	delivered := map[TID]bool{}

	releaseWaiting := func(id TID) {
		for _, subscriber := range waitingSubscribers[id] {
			close(subscriber)
		}
		delete(waitingSubscribers, id)
	}

	defer func() {
		for id := range waitingSubscribers {
			releaseWaiting(id)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.stopChannel:
			return

		case subscription := <-b.subscribeChannel:
			c := publishedChannels[subscription.ID]
			if c == nil {
				// Signal to the subscriber that the producer is finished (or hasn't started yet).
				close(subscription.Channel)
				break
			}
			if !delivered[subscription.ID] {
				// First subscriber gets the channel from the producer.
				delivered[subscription.ID] = true
				subscription.Channel <- c
				break
			}
			// Subsequent subscribers block until the producer is finished.
			waitingSubscribers[subscription.ID] = append(waitingSubscribers[subscription.ID], subscription.Channel)

		case publication := <-b.publishChannel:
			publishedChannels[publication.ID] = publication.Channel

		case id := <-b.unpublishChannel:
			delete(publishedChannels, id)
			delete(delivered, id)
			releaseWaiting(id)
		}
	}
}

// Stop the goroutine that handles the broker.
func (b *ChannelBroker[TID, TPayload]) Stop() {
	close(b.stopChannel)
}

// Subscribe to the channel with ID. Returns a channel that will receive the channel corresponding to the ID.
// If the channel is not yet published, the returned channel will be closed.
// If there's already a subscriber, the returned channel will block until the producer is finished and then
// close the returned channel. If the broker is stopped or ctx is done, the returned channel is closed.
func (b *ChannelBroker[TID, TPayload]) Subscribe(ctx context.Context, id TID) chan chan TPayload {
	channel := make(chan chan TPayload, 1)
	select {
	case b.subscribeChannel <- subscribeChannelContent[TID, TPayload]{
		ID:      id,
		Channel: channel,
	}:
	case <-ctx.Done():
		close(channel)
	case <-b.stopChannel:
		close(channel)
	}
	return channel
}

// Publish the channel with ID. The channel will be sent to the first subscriber.
func (b *ChannelBroker[TID, TPayload]) Publish(ctx context.Context, id TID, channel chan TPayload) {
	select {
	case b.publishChannel <- publishChannelContent[TID, TPayload]{
		ID:      id,
		Channel: channel,
	}:
	case <-ctx.Done():
	case <-b.stopChannel:
	}
}

// Unpublish the channel with ID. Note that the channel will be removed from the broker which means
// that subscribers will not be able to receive the channel from the broker. The suggested way to
// get around this is an unbuffered channel that blocks the producer until it gets a consumer. If the
// consumers are unreliable, the producer should have a timeout to not block forever.
//
// Subscribers waiting behind the first one are released by closing their channels.
func (b *ChannelBroker[TID, TPayload]) Unpublish(ctx context.Context, id TID) {
	select {
	case b.unpublishChannel <- id:
	case <-ctx.Done():
	case <-b.stopChannel:
	}
}
