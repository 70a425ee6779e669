// Package domain contains the core business entities, value objects, and
// domain logic of the application: the Task entity, its priority and category
// enumerations, and aggregate task statistics. It is independent of any
// specific infrastructure or delivery mechanism.
package domain
