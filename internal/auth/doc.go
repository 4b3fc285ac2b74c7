// Package auth backs the login detour: local users with bcrypt password
// hashes, HS256 session tokens recorded in sqlite so they can be revoked,
// and a Session that answers the navigator's authentication queries.
package auth
