// Package flights keeps a registry of flight numbers and searches it.
//
// [Service] validates input and implements the search. Persistence is
// delegated to a [Store]:
//
//   - [MemoryStore] keeps numbers in a binary search tree behind a mutex
//   - [RedisStore] keeps them in a Redis set
//   - [MongoStore] keeps one document per number in a MongoDB collection
//     with a unique index
//
// Registering a number twice is not an error; the second call reports that
// nothing was added.
package flights
