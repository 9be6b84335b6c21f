// Package cleanup implements orphaned-upload cleanup for the store.
//
// Orphaned uploads are files that exist in the upload store but are no longer
// referenced by any database record. They accumulate when a product, category,
// brand, user avatar, blog post or settings image is replaced or removed: the
// database row changes, the old file stays behind.
//
// The pipeline runs in four stages with strict separation:
//
//	scan      collect every image/file reference from the database into a
//	          set of live filenames (Scanner)
//	list      enumerate the upload store (uploads.Store)
//	resolve   pure set difference: uploaded minus referenced (ResolveOrphans)
//	delete    remove each orphan, isolating per-file failures (deleteOrphans)
//
// The Service owns the pipeline, a run-lock that makes concurrent runs
// impossible, run history, and metrics. The Scheduler fires the Service once
// a day through a cron expression evaluated in UTC.
//
// The scan is deliberately fail-fast: if any collection read fails, the whole
// run aborts. A partial reference set would misclassify live files as orphans
// and delete user data.
//
// Usage:
//
//	svc := cleanup.NewService(store, uploadStore, cleanupMetrics, cleanup.Config{})
//	stats, err := svc.Run(ctx, models.TriggerManual)
//
//	sched := cleanup.NewScheduler(svc, cleanup.SchedulerConfig{})
//	if err := sched.Start(); err != nil { ... }
//	defer sched.Stop()
package cleanup
