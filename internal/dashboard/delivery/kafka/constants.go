package kafka

// TopicFetchSettled is where one message per settled fetch is published.
const TopicFetchSettled = "dashboard.fetch.settled"
