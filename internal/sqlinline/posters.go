package sqlinline

const QCreatePostersTable = `--sql
create table if not exists posters (
  id            uuid primary key,
  request_id    text not null default '',
  template_id   text not null,
  property_type text not null,
  location      text not null,
  storage_key   text not null,
  bytes         bigint not null default 0,
  created_at    timestamptz not null default now()
);
`

const QInsertPoster = `--sql
insert into posters(
  id,
  request_id,
  template_id,
  property_type,
  location,
  storage_key,
  bytes,
  created_at
) values (
  $1::uuid,
  $2::text,
  $3::text,
  $4::text,
  $5::text,
  $6::text,
  $7::bigint,
  $8::timestamptz
);
`

const QListRecentPosters = `--sql
select
  id,
  request_id,
  template_id,
  property_type,
  location,
  storage_key,
  bytes,
  created_at
from posters
order by created_at desc
limit $1::int;
`
